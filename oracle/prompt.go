package oracle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rushteam/askrank/core"
)

// Prompter 向裁决者提出一个问题并返回原始应答文本。
type Prompter interface {
	Prompt(ctx context.Context, question string) (string, error)
}

// PromptOracle 把比较转换成自然语言问题，并用 Affirmative 归一化应答。
type PromptOracle struct {
	prompter Prompter
}

var _ core.Oracle = (*PromptOracle)(nil)

func NewPromptOracle(p Prompter) *PromptOracle {
	return &PromptOracle{prompter: p}
}

func (o *PromptOracle) AskPreferred(ctx context.Context, candidate, reference any) (bool, error) {
	q := fmt.Sprintf("Is %q better than %q (y/[n])? ", fmt.Sprint(candidate), fmt.Sprint(reference))
	return o.ask(ctx, q)
}

func (o *PromptOracle) AskEquivalent(ctx context.Context, candidate, reference any) (bool, error) {
	q := fmt.Sprintf("Is %q roughly equivalent to %q (y/[n])? ", fmt.Sprint(candidate), fmt.Sprint(reference))
	return o.ask(ctx, q)
}

func (o *PromptOracle) ask(ctx context.Context, question string) (bool, error) {
	answer, err := o.prompter.Prompt(ctx, question)
	if err != nil {
		return false, err
	}
	return Affirmative(answer), nil
}

// ErrNoAnswer 表示输入流在给出应答前就结束了。
var ErrNoAnswer = core.NewDomainError(core.ModuleOracle, core.ErrorCodeInvalidInput, "input closed before an answer was given")

// LinePrompter 把问题写到 out，从 in 读取一行作为应答。
//
// Echo 为 true 时把读到的应答回显到 out（输入不是终端时使用，便于留下问答记录）。
type LinePrompter struct {
	in   *bufio.Reader
	out  io.Writer
	Echo bool
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("write question: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoAnswer
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	if p.Echo {
		fmt.Fprintf(p.out, "%q\n", line)
	}
	return line, nil
}
