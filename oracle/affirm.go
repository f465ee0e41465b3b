// Package oracle 提供 core.Oracle 的实现：终端问答、CEL 表达式与函数适配。
package oracle

import "strings"

// Cutset 是归一化应答时从两端去掉的空白与标点。
const Cutset = " \t\n\r\v\f.!?-_–—()[]{}\\|/`~\"':;,<>#$%^&*@"

// affirmatives 是固定的肯定应答集合（归一化后比较），不在集合中的一律视为否定。
var affirmatives = map[string]struct{}{
	"y": {}, "yes": {}, "yeah": {}, "ye": {}, "yah": {}, "yay": {}, "yep": {}, "yup": {}, "yeh": {},
	"affirmative": {}, "totally": {}, "sure": {}, "you know it": {}, "you bet": {},
	"for sure": {}, "you betcha": {}, "aye": {}, "roger": {}, "absolutely": {}, "mhm": {},
	"definitely": {}, "of course": {}, "si": {}, "sí": {}, "sì": {}, "oui": {}, "ja": {}, "da": {},
	"sim": {}, "hai": {}, "shi": {}, "👍": {}, "👌": {}, "✅": {},
}

// Normalize 去掉两端的 Cutset 字符并转为小写。
func Normalize(answer string) string {
	return strings.ToLower(strings.Trim(answer, Cutset))
}

// Affirmative 判断应答是否为肯定。无法识别的应答视为否定，不会重新询问。
func Affirmative(answer string) bool {
	_, ok := affirmatives[Normalize(answer)]
	return ok
}
