package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

// Convert turns raw string values into a value of type t.
//
// Pointer targets allocate their element and convert into it. Types whose
// pointer implements encoding.TextUnmarshaler use that parse operation
// (uuid.UUID, time.Time, net.IP, ...). Everything else converts by kind:
// strings apply as-is, bools accept strconv forms plus "on"/"yes"/"1",
// numeric kinds parse with strconv, time.Duration parses with
// time.ParseDuration, and slices convert each element, splitting single
// comma-separated values.
func Convert(values []string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	if err := setValue(v, t, values); err != nil {
		return reflect.Value{}, err
	}
	return v, nil
}

// Convertible reports whether values of type t can be produced from strings.
// The dispatch compiler rejects lookup-bound parameters of unconvertible
// types at build time.
func Convertible(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice:
		return Convertible(t.Elem())
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	if t == durationType {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func setValue(v reflect.Value, t reflect.Type, values []string) error {
	// Dereference pointers, creating new instances for nil pointers
	if t.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(t.Elem()))
		}
		return setValue(v.Elem(), t.Elem(), values)
	}

	if t.Kind() == reflect.Slice {
		return setSlice(v, t, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	// Textual parse operations win over generic conversion
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid %s value %q", t, value)
		}
		return nil
	}

	if t == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value %q", value)
		}
		v.SetInt(int64(d))
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		v.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Accept common form representations
			switch strings.ToLower(value) {
			case "on", "yes", "1":
				b = true
			case "off", "no", "0", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		v.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", t)
	}

	return nil
}

func setSlice(v reflect.Value, t reflect.Type, values []string) error {
	elemType := t.Elem()

	// Handle both repeated keys and comma-separated values in a single key
	var allValues []string
	for _, value := range values {
		if strings.Contains(value, ",") {
			allValues = append(allValues, strings.Split(value, ",")...)
		} else {
			allValues = append(allValues, value)
		}
	}

	slice := reflect.MakeSlice(t, len(allValues), len(allValues))
	for i, value := range allValues {
		if err := setValue(slice.Index(i), elemType, []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	v.Set(slice)
	return nil
}
