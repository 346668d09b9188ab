package ontology_v0

import "miren.dev/ontology/pkg/ontology"

// Subjecter is implemented by the assertion kinds.
type Subjecter interface {
	Entity
	GetSubject() ([]byte, bool)
}

func (o *ClassAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *NegativeClassAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *ObjectPropertyAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *NegativeObjectPropertyAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *DataPropertyAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *NegativeDataPropertyAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *AnnotationAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

func (o *NegativeAnnotationAssertion) GetSubject() ([]byte, bool) {
	return o.Subject, len(o.Subject) != 0
}

// GetSubject returns the subject of an assertion. It reports false for kinds
// without a subject and for assertions whose subject is unset.
func GetSubject(e Entity) ([]byte, bool) {
	s, ok := e.(Subjecter)
	if !ok {
		return nil, false
	}
	return s.GetSubject()
}

// GetAssertionComplement returns the negative assertion about the same
// subject and class. Annotations are not carried over.
func (o *ClassAssertion) GetAssertionComplement() *NegativeClassAssertion {
	return &NegativeClassAssertion{
		Subject: ontology.CloneBytes(o.Subject),
		Class:   ontology.CloneBytes(o.Class),
	}
}

// GetAssertionComplement returns the positive assertion about the same
// subject and class. Annotations are not carried over.
func (o *NegativeClassAssertion) GetAssertionComplement() *ClassAssertion {
	return &ClassAssertion{
		Subject: ontology.CloneBytes(o.Subject),
		Class:   ontology.CloneBytes(o.Class),
	}
}

// GetAssertionComplement returns the complement of a class assertion or its
// negation, and false for any other kind.
func GetAssertionComplement(e Entity) (Entity, bool) {
	switch v := e.(type) {
	case *ClassAssertion:
		return v.GetAssertionComplement(), true
	case *NegativeClassAssertion:
		return v.GetAssertionComplement(), true
	default:
		return nil, false
	}
}
