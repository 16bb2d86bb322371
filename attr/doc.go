// Package attr defines the typed attribute values stored on entries.
//
// Values are built with the constructors Int, Float, String, Bool, Array and
// Ref, and read back with the matching As* accessors:
//
//	v := attr.String("NOUN")
//	if s, ok := v.AsString(); ok {
//	    fmt.Println(s)
//	}
//
// A FieldType declared by the schema restricts which kinds an attribute
// accepts; see FieldType.Accepts.
package attr
