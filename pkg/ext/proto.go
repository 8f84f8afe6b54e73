package ext

import (
	"reflect"

	"google.golang.org/protobuf/proto"
)

// ProtoTag reports the full name of a protobuf message, for example
// "google.protobuf.Timestamp". Nil messages are not recognised so that they
// keep the Null tag.
func ProtoTag(v any) (string, bool) {
	m, ok := v.(proto.Message)
	if !ok {
		return "", false
	}
	if rv := reflect.ValueOf(m); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	msg := m.ProtoReflect()
	if !msg.IsValid() {
		return "", false
	}
	return string(msg.Descriptor().FullName()), true
}
