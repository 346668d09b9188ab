package ontology

import (
	"fmt"
	"sync"

	"miren.dev/ontology/pkg/mapx"
)

type registration struct {
	desc *KindDesc
	new  func() Record
}

var registry = struct {
	mu     sync.RWMutex
	byID   map[uint64]*registration
	byName map[string]*registration
	byCid  map[uint64]*registration
}{
	byID:   make(map[uint64]*registration),
	byName: make(map[string]*registration),
	byCid:  make(map[uint64]*registration),
}

// Register makes a kind known to the envelope, Web3 and CID decoders. It is
// called from the init function of generated code and panics when a kind
// collides with one already registered.
func Register(desc *KindDesc, newFn func() Record) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.byName[desc.Name]; ok {
		panic(fmt.Sprintf("ontology: kind %s registered twice", desc.Name))
	}

	if prev, ok := registry.byID[desc.ID]; ok {
		panic(fmt.Sprintf("ontology: kind id %d of %s already used by %s", desc.ID, desc.Name, prev.desc.Name))
	}

	if prev, ok := registry.byCid[desc.CidPrefix]; ok {
		panic(fmt.Sprintf("ontology: cid prefix %#x of %s already used by %s", desc.CidPrefix, desc.Name, prev.desc.Name))
	}

	reg := &registration{desc: desc, new: newFn}

	registry.byID[desc.ID] = reg
	registry.byName[desc.Name] = reg
	registry.byCid[desc.CidPrefix] = reg
}

// New returns an empty record of the kind with the given id.
func New(id uint64) (Record, error) {
	registry.mu.RLock()
	reg, ok := registry.byID[id]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrKindNotFound, id)
	}

	return reg.new(), nil
}

// NewByName returns an empty record of the named kind.
func NewByName(name string) (Record, error) {
	registry.mu.RLock()
	reg, ok := registry.byName[name]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindNotFound, name)
	}

	return reg.new(), nil
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (*KindDesc, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	reg, ok := registry.byName[name]
	if !ok {
		return nil, false
	}

	return reg.desc, true
}

// LookupCodec returns the descriptor whose CID prefix is codec.
func LookupCodec(codec uint64) (*KindDesc, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	reg, ok := registry.byCid[codec]
	if !ok {
		return nil, false
	}

	return reg.desc, true
}

// Registered returns every registered kind ordered by kind id.
func Registered() []*KindDesc {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	var out []*KindDesc
	for _, reg := range mapx.StableOrder(registry.byID) {
		out = append(out, reg.desc)
	}

	return out
}

// Codecs returns the CID prefixes of every registered kind.
func Codecs() []uint64 {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return mapx.Keys(registry.byCid)
}
