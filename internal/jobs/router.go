package jobs

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// HandlerFunc - обработчик одного типа задания
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Router сопоставляет имя задания с обработчиком. Сам роутер не делает
// повторов: ошибка обработчика возвращается очереди, и повтор - ее зона
// ответственности.
type Router struct {
	handlers map[string]HandlerFunc
	logger   *logrus.Logger
}

// NewRouter создает новый Router
func NewRouter(logger *logrus.Logger) *Router {
	return &Router{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

// Register регистрирует обработчик для имени задания
func (r *Router) Register(name string, handler HandlerFunc) {
	r.handlers[name] = handler
}

// Dispatch вызывает ровно один обработчик по имени задания.
// Для неизвестного имени возвращает handled=false: такое задание
// логируется и отбрасывается, это не ошибка.
func (r *Router) Dispatch(ctx context.Context, name string, payload json.RawMessage) (bool, error) {
	handler, ok := r.handlers[name]
	if !ok {
		r.logger.WithField("job_name", name).Warn("No handler registered for job name")
		return false, nil
	}
	return true, handler(ctx, payload)
}
