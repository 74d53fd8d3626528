package hostpage

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

// Memory is an in-process page. Edits made with Set notify OnChange
// listeners, writes made through WriteField do not, like a script changing a
// form field.
type Memory struct {
	mutex  sync.RWMutex
	fields map[model.PageField]string
	lists  map[model.PageList][]string

	changed chan struct{}
}

var _ interfaces.HostPage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		fields:  make(map[model.PageField]string),
		lists:   make(map[model.PageList][]string),
		changed: make(chan struct{}, 1),
	}
}

// Set edits a field as a user would.
func (x *Memory) Set(field model.PageField, value string) {
	x.mutex.Lock()
	x.fields[field] = value
	x.mutex.Unlock()
	x.notify()
}

func (x *Memory) SetList(list model.PageList, values []string) {
	x.mutex.Lock()
	x.lists[list] = append([]string{}, values...)
	x.mutex.Unlock()
	x.notify()
}

// notify coalesces bursts of edits into a single pending change.
func (x *Memory) notify() {
	select {
	case x.changed <- struct{}{}:
	default:
	}
}

func (x *Memory) ReadField(ctx context.Context, field model.PageField) (string, error) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()

	v, ok := x.fields[field]
	if !ok {
		return "", goerr.Wrap(types.ErrInvalidOption, "page field not found", goerr.V("field", field))
	}
	return v, nil
}

func (x *Memory) ReadList(ctx context.Context, list model.PageList) ([]string, error) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return append([]string{}, x.lists[list]...), nil
}

func (x *Memory) WriteField(ctx context.Context, field model.PageField, value string) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.fields[field] = value
	return nil
}

func (x *Memory) OnChange(ctx context.Context, fn func(ctx context.Context) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-x.changed:
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}
