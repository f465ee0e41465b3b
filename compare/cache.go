package compare

import (
	"fmt"
	"sort"

	"github.com/rushteam/askrank/core"
)

type pairKey struct {
	from, to int
}

// Cache 是会话级的关系缓存：按 (a, b) 身份令牌记录 a 相对 b 的关系。
//
// 不变式：(a, b) 记为 r 时，(b, a) 一定记为 r.Inverse()。
// 条目只增不删，只能按 core.Relation.RefinesTo 细化；会话结束后整体丢弃。
// 单线程使用，不加锁。
type Cache struct {
	rel map[pairKey]core.Relation
}

func NewCache() *Cache {
	return &Cache{rel: make(map[pairKey]core.Relation)}
}

// Lookup 返回 a 相对 b 的已知关系。
func (c *Cache) Lookup(a, b int) (core.Relation, bool) {
	r, ok := c.rel[pairKey{a, b}]
	return r, ok
}

// Record 写入 (a, b) = r 以及镜像 (b, a) = r.Inverse()。
// 与已有关系矛盾、或已有条目的镜像不一致时返回 ConsistencyError，缓存保持不变。
func (c *Cache) Record(a, b int, r core.Relation) error {
	if r == core.RelationUnknown {
		return core.NewConsistencyError(core.ModuleCompare,
			fmt.Sprintf("record (%d,%d): unknown relation", a, b))
	}
	if a == b {
		if r != core.Equal {
			return core.NewConsistencyError(core.ModuleCompare,
				fmt.Sprintf("record (%d,%d): item related to itself as %s", a, b, r))
		}
		c.rel[pairKey{a, a}] = core.Equal
		return nil
	}

	prior, hasPrior := c.rel[pairKey{a, b}]
	mirror, hasMirror := c.rel[pairKey{b, a}]
	if hasPrior != hasMirror || (hasPrior && mirror != prior.Inverse()) {
		return core.NewConsistencyError(core.ModuleCompare,
			fmt.Sprintf("record (%d,%d): entry %s has mirror %s", a, b, prior, mirror))
	}
	if hasPrior && !prior.RefinesTo(r) {
		return core.NewConsistencyError(core.ModuleCompare,
			fmt.Sprintf("record (%d,%d): %s contradicts cached %s", a, b, r, prior))
	}

	c.rel[pairKey{a, b}] = r
	c.rel[pairKey{b, a}] = r.Inverse()
	return nil
}

// Len 返回有向条目数（每个无序对占两条）。
func (c *Cache) Len() int {
	return len(c.rel)
}

// Verify 检查所有条目的镜像不变式，返回第一个违反项。
func (c *Cache) Verify() error {
	keys := make([]pairKey, 0, len(c.rel))
	for k := range c.rel {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})
	for _, k := range keys {
		r := c.rel[k]
		mirror, ok := c.rel[pairKey{k.to, k.from}]
		if !ok || mirror != r.Inverse() {
			return core.NewConsistencyError(core.ModuleCompare,
				fmt.Sprintf("pair (%d,%d) is %s but mirror is %s", k.from, k.to, r, mirror))
		}
	}
	return nil
}
