package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword подменяется в тестах, чтобы не трогать терминал.
var readPassword = term.ReadPassword

// promptText печатает приглашение и читает одну строку ввода.
// Завершающий перевод строки отбрасывается; частичная строка перед EOF
// возвращается как есть.
func promptText(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword читает пароль без эха с файлового дескриптора терминала.
func promptPassword(fd int, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	data, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// promptFloat читает число с плавающей точкой; пустой ввод возвращает def.
func promptFloat(reader *bufio.Reader, w io.Writer, prompt string, def float64) (float64, error) {
	text, err := promptText(reader, w, prompt)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return def, nil
	}
	return strconv.ParseFloat(text, 64)
}

// promptInt читает целое число; пустой ввод возвращает def.
func promptInt(reader *bufio.Reader, w io.Writer, prompt string, def int) (int, error) {
	text, err := promptText(reader, w, prompt)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return def, nil
	}
	return strconv.Atoi(text)
}

// promptDefault читает строку; пустой ввод возвращает def.
func promptDefault(reader *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	text, err := promptText(reader, w, fmt.Sprintf("%s [%s]", prompt, def))
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return text, nil
}
