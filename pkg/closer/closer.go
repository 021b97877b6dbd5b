package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Closer обеспечивает потокобезопасное закрытие ресурсов приложения.
// Ресурсы закрываются в порядке LIFO: последним добавлен — первым закрыт,
// чтобы HTTP-сервер останавливался раньше клиентов, которыми он пользуется.
type Closer struct {
	funcs []Func
	mu    sync.Mutex
	once  sync.Once
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

func NewCloser() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// Отмена контекста прерывает обход; уже собранные ошибки попадают в результат.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var errors []string
		for i := len(funcs) - 1; i >= 0; i-- {
			if ctx.Err() != nil {
				errors = append(errors, fmt.Sprintf("[!] interrupted: %d func(s) not closed", i+1))
				break
			}

			if closeErr := funcs[i](ctx); closeErr != nil {
				errors = append(errors, fmt.Sprintf("[!] %v", closeErr))
			}
		}

		if len(errors) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errors, "\n"))
		}
	})

	return err
}
