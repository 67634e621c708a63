package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct fills the fields of the struct v points to whose tagName tag
// names a parameter present in lookup. Untagged fields, "-" tags and
// parameters that are absent or empty leave the field untouched.
func bindToStruct(v any, tagName string, lookup func(name string) []string, bindErr error) error {
	rv, err := structTarget(v)
	if err != nil {
		return fmt.Errorf("%w: %w", bindErr, err)
	}

	for _, sf := range reflect.VisibleFields(rv.Type()) {
		if !sf.IsExported() || len(sf.Index) != 1 {
			continue
		}
		name := paramName(sf, tagName)
		if name == "" {
			continue
		}
		raw := lookup(name)
		if len(raw) == 0 || (len(raw) == 1 && raw[0] == "") {
			continue
		}
		if err := assign(rv.Field(sf.Index[0]), raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}
	return nil
}

// structTarget returns the struct behind a non-nil struct pointer.
func structTarget(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv.Elem(), nil
}

func paramName(sf reflect.StructField, tagName string) string {
	tag := sf.Tag.Get(tagName)
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// assign stores raw into dst. Pointers are allocated, slices accept both
// repeated parameters and comma-separated lists, scalars use the first value.
func assign(dst reflect.Value, raw []string) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), raw)
	case reflect.Slice:
		var items []string
		for _, r := range raw {
			items = append(items, strings.Split(r, ",")...)
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), []string{item}); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}
	return assignScalar(dst, strings.TrimSpace(raw[0]))
}

func assignScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%q is not an unsigned integer", s)
		}
		dst.SetUint(n)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	default:
		return fmt.Errorf("cannot bind into %s", dst.Kind())
	}
	return nil
}

// parseBool also accepts the checkbox spellings on/off and yes/no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}
