package memtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemTable__Set_Get(t *testing.T) {
	m := New(1 << 20)

	m.Set("key01", []byte("value01"), 0)

	data, ok := m.Get("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("value01"), data)
}

func TestMemTable__Get_Missing(t *testing.T) {
	m := New(1 << 20)

	data, ok := m.Get("key01")
	assert.Equal(t, false, ok)
	assert.Nil(t, data)
}

func TestMemTable__Delete(t *testing.T) {
	m := New(1 << 20)

	m.Set("key01", []byte("value01"), 0)
	m.Delete("key01")

	_, ok := m.Get("key01")
	assert.Equal(t, false, ok)
}

func TestMemTable__Overwrite(t *testing.T) {
	m := New(1 << 20)

	m.Set("key01", []byte("value01"), 0)
	m.Set("key01", []byte("value02"), 0)

	data, ok := m.Get("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("value02"), data)
}
