package models

import "github.com/valyala/fastjson"

// Document is one parsed input ready to be flattened.
type Document struct {
	// Source names where the JSON came from: a file path, "stdin" or
	// "interactive".
	Source string
	Root   *fastjson.Value
	// Size is the length of the raw input in bytes.
	Size int
}

// RootIsArray reports whether the document root is a JSON array.
func (d Document) RootIsArray() bool {
	return d.Root != nil && d.Root.Type() == fastjson.TypeArray
}
