// Package ontology_v0 holds the compiled ontology kinds. Every kind is a
// plain struct of byte fields; Entity is the closed union over them.
package ontology_v0

//go:generate go run ../../../pkg/ontology/cmd/ontologygen -pkg ontology_v0 -input ../schema.yml -output ontology.gen.go
