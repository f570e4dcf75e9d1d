package models

import (
	"reflect"
	"strings"
)

// Columns lists the column names a model maps through its gorm tags, in field
// order. Association fields carry no column tag and are skipped.
func Columns(model interface{}) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			columns = append(columns, Columns(reflect.New(field.Type).Interface())...)
			continue
		}
		if name := columnFromTag(field.Tag.Get("gorm")); name != "" {
			columns = append(columns, name)
		}
	}
	return columns
}

func columnFromTag(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
