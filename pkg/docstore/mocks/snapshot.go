package mocks

import (
	"fmt"
	"reflect"
)

// Snapshot is a fixed document whose DataTo copies a value of the same type
// into the destination.
type Snapshot struct {
	DocID string
	Data  interface{}
}

func NewSnapshot(id string, data interface{}) *Snapshot {
	return &Snapshot{DocID: id, Data: data}
}

func (s *Snapshot) ID() string {
	return s.DocID
}

func (s *Snapshot) DataTo(v interface{}) error {
	dst := reflect.ValueOf(v)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return fmt.Errorf("DataTo: destination must be a non-nil pointer, got %T", v)
	}
	src := reflect.ValueOf(s.Data)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if src.Type() != dst.Elem().Type() {
		return fmt.Errorf("DataTo: cannot decode %s into %s", src.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(src)
	return nil
}
