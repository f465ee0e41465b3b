package compare

import "fmt"

// Item 包装一个原始物品，是比较的最小单元。
//
// id 是包装时分配的身份令牌，关系缓存按它做 key，
// 因此原始值不需要可比较/可哈希。
// caching 在构造时确定，同一会话内所有 Item 必须一致。
// index 只在排列还原时使用（记录排序前的位置）。
type Item struct {
	id      int
	value   any
	caching bool
	index   int
}

func (it *Item) ID() int       { return it.id }
func (it *Item) Value() any    { return it.value }
func (it *Item) Caching() bool { return it.caching }

// Index 返回排序前记录的位置。
func (it *Item) Index() int { return it.index }

// SetIndex 记录物品在容器中的位置。
func (it *Item) SetIndex(i int) { it.index = i }

func (it *Item) String() string {
	return fmt.Sprint(it.value)
}
