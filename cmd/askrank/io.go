package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// 特殊路径："-" 表示标准输入/输出，空串表示剪贴板
const stdioPath = "-"

func readInput(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	case stdioPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

func writeOutput(path, text string, stdout io.Writer) error {
	switch path {
	case "":
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
		return nil
	case stdioPath:
		_, err := fmt.Fprintln(stdout, text)
		return err
	default:
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}

// splitLines 去掉首尾空白后按行切分（兼容 CRLF），空输入返回 nil。
func splitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// isTerminal 判断 r 是否为交互终端。
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
