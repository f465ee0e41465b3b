package core

// Relation 是两个物品之间的比较关系（有方向：描述 a 相对 b）。
//
// LessOrEqual / GreaterOrEqual 是临时状态：只问过非严格比较时记录，
// 之后的相等性询问可将其细化为 Equal 或严格关系。
type Relation uint8

const (
	RelationUnknown Relation = iota
	LessThan
	LessOrEqual
	Equal
	GreaterOrEqual
	GreaterThan
	NotEqual
)

var relationNames = [...]string{
	RelationUnknown: "unknown",
	LessThan:        "lt",
	LessOrEqual:     "le",
	Equal:           "eq",
	GreaterOrEqual:  "ge",
	GreaterThan:     "gt",
	NotEqual:        "ne",
}

func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return "invalid"
}

// Inverse 返回从另一侧看到的关系：a 对 b 为 r，则 b 对 a 为 r.Inverse()。
func (r Relation) Inverse() Relation {
	switch r {
	case LessThan:
		return GreaterThan
	case LessOrEqual:
		return GreaterOrEqual
	case GreaterOrEqual:
		return LessOrEqual
	case GreaterThan:
		return LessThan
	default:
		// Equal、NotEqual、Unknown 自反
		return r
	}
}

// RefinesTo 判断已有关系 r 能否被 next 覆盖而不产生矛盾。
// 相同关系总是允许；严格关系与 Equal 是终态。
func (r Relation) RefinesTo(next Relation) bool {
	if r == next {
		return true
	}
	switch r {
	case RelationUnknown:
		return next != RelationUnknown
	case LessOrEqual:
		return next == LessThan || next == Equal
	case GreaterOrEqual:
		return next == GreaterThan || next == Equal
	case NotEqual:
		return next == LessThan || next == GreaterThan
	default:
		return false
	}
}
