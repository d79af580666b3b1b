package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
	IsList    bool
}

// ReflectionCache remembers the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			kind := fieldType.Kind()
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  kind == reflect.Struct,
				IsList:    kind == reflect.Slice || kind == reflect.Array,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// FieldValue is one formatted field of an inspected value. Lists and structs
// carry their elements as Children.
type FieldValue struct {
	Name     string
	Text     string
	Children []FieldValue
}

// Describe formats the exported fields of the struct v, or of the struct v
// points to. Values implementing fmt.Stringer use their String method.
func (rc *ReflectionCache) Describe(v any) []FieldValue {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return rc.describeStruct(val)
}

func (rc *ReflectionCache) describeStruct(val reflect.Value) []FieldValue {
	fields := rc.GetFields(val.Type())
	out := make([]FieldValue, 0, len(fields))
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				out = append(out, FieldValue{Name: field.Name, Text: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		out = append(out, rc.describeValue(field.Name, fieldVal))
	}
	return out
}

func (rc *ReflectionCache) describeValue(name string, val reflect.Value) FieldValue {
	if !val.IsValid() {
		return FieldValue{Name: name, Text: "<invalid>"}
	}

	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok {
			return FieldValue{Name: name, Text: s.String()}
		}
	}

	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		fv := FieldValue{Name: name, Text: fmt.Sprintf("[%d items]", val.Len())}
		for i := 0; i < val.Len(); i++ {
			fv.Children = append(fv.Children, rc.describeValue(fmt.Sprintf("%d", i), val.Index(i)))
		}
		return fv

	case reflect.Struct:
		return FieldValue{Name: name, Text: val.Type().Name(), Children: rc.describeStruct(val)}

	case reflect.Map:
		return FieldValue{Name: name, Text: fmt.Sprintf("map[%d items]", val.Len())}

	default:
		if !val.CanInterface() {
			return FieldValue{Name: name, Text: val.Kind().String()}
		}
		return FieldValue{Name: name, Text: fmt.Sprintf("%v", val.Interface())}
	}
}

var globalReflectionCache = NewReflectionCache()
