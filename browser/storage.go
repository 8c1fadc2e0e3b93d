// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

package browser

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/danielhkuo/quickly-tally/notify"
)

// LocalStorage is window.localStorage as a storage area.
type LocalStorage struct {
	obj js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{obj: js.Global().Get("localStorage")}
}

func (l *LocalStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	v := l.obj.Call("getItem", key)
	if !exists(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetItem stores value. A thrown exception (quota exceeded, storage
// disabled) is returned as an error.
func (l *LocalStorage) SetItem(_ context.Context, key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("localStorage.setItem: %w", jsErr)
		}
	}()
	l.obj.Call("setItem", key, value)
	return nil
}

func (l *LocalStorage) Close() error {
	return nil
}

// ListenStorage forwards the window's storage events for key to the broker.
// The browser only fires them for writes made by other tabs, so they are
// published with notify.ExternalOrigin. The returned func removes the
// listener.
func ListenStorage(broker *notify.Broker, key string) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		if k := e.Get("key"); !exists(k) || k.String() != key {
			return nil
		}
		ev := notify.Event{
			Key:      key,
			OldValue: nullableString(e.Get("oldValue")),
			NewValue: nullableString(e.Get("newValue")),
			Origin:   notify.ExternalOrigin,
		}
		// callbacks must not block on the broker lock
		go broker.Publish(ev)
		return nil
	})

	window := js.Global()
	window.Call("addEventListener", "storage", cb)
	return func() {
		window.Call("removeEventListener", "storage", cb)
		cb.Release()
	}
}

func nullableString(v js.Value) string {
	if !exists(v) {
		return ""
	}
	return v.String()
}
