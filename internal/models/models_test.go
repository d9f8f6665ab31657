package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastjson"
)

func TestDocument_RootIsArray(t *testing.T) {
	arr := fastjson.MustParse(`[1]`)
	obj := fastjson.MustParse(`{"a":1}`)

	assert.True(t, Document{Root: arr}.RootIsArray())
	assert.False(t, Document{Root: obj}.RootIsArray())
	assert.False(t, Document{}.RootIsArray())
}
