// Package notify определяет канал пользовательских уведомлений.
//
// HTTP-слой публикует ровно одно уведомление на каждый неуспешный запрос
// (и по одному на каждую деталь ошибки валидации); представления не должны
// дублировать уже опубликованное уведомление.
package notify

import (
	"fmt"
	"io"
	"log/slog"
)

// Notifier принимает одно пользовательское сообщение.
type Notifier interface {
	Notify(msg string)
}

// Writer печатает уведомления пользователю и дублирует их в лог.
type Writer struct {
	out io.Writer
	log *slog.Logger
}

// NewWriter создаёт Notifier, пишущий в out.
func NewWriter(out io.Writer, log *slog.Logger) *Writer {
	return &Writer{out: out, log: log}
}

// Notify выводит сообщение пользователю.
func (w *Writer) Notify(msg string) {
	fmt.Fprintf(w.out, "! %s\n", msg)
	w.log.Debug("user notification", slog.String("message", msg))
}

// Recorder накапливает уведомления, используется в тестах.
type Recorder struct {
	Messages []string
}

// Notify сохраняет сообщение.
func (r *Recorder) Notify(msg string) {
	r.Messages = append(r.Messages, msg)
}
