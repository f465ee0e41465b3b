// Package mergeinsert 实现 Ford–Johnson 归并插入排序，
// 用于比较代价极高（每次比较都要询问外部裁决者）的场景。
//
// 排序只依赖一个可能失败的"小于"谓词；谓词出错时排序立即中止并返回错误，
// 不产生部分结果。
package mergeinsert

import (
	"context"
	"slices"
)

// LessFunc 报告 a 是否严格小于 b（升序意义上）。
type LessFunc[E any] func(ctx context.Context, a, b E) (bool, error)

type pair[E any] struct {
	small, large E
}

// Sort 返回按 less 降序排列（最"大"者在前）的新切片，输入切片不被修改。
//
// 步骤：
//  1. 元素个数为奇数时，摘下最后一个作为 straggler
//  2. 相邻两两配对，每对比较一次，使 small < large
//  3. 按 large 对各对做插入排序（从已排序前缀的末尾向前比较）
//  4. 主序列 S 由各对的 large 组成，第一对的 small 无需比较直接放在 S 头部
//  5. 其余 small（pend）按 Jacobsthal 顺序二分插入 S
//  6. straggler 二分插入完整的 S
//  7. 反转 S 得到降序结果
func Sort[E any](ctx context.Context, items []E, less LessFunc[E]) ([]E, error) {
	n := len(items)
	if n <= 1 {
		return append([]E(nil), items...), nil
	}

	work := items
	var straggler E
	hasStraggler := n%2 != 0
	if hasStraggler {
		straggler = items[n-1]
		work = items[:n-1]
	}

	pairs, err := makePairs(ctx, work, less)
	if err != nil {
		return nil, err
	}
	if err := sortPairs(ctx, pairs, less); err != nil {
		return nil, err
	}

	s := make([]E, 0, n)
	pend := make([]E, 0, len(pairs))
	for _, p := range pairs {
		s = append(s, p.large)
		pend = append(pend, p.small)
	}

	// pend[0] 小于 S[0]（同一对的 large），直接放在头部
	s = slices.Insert(s, 0, pend[0])

	for _, idx := range insertionOrder(len(pend)) {
		if s, err = binaryInsert(ctx, s, pend[idx], less); err != nil {
			return nil, err
		}
	}

	if hasStraggler {
		if s, err = binaryInsert(ctx, s, straggler, less); err != nil {
			return nil, err
		}
	}

	slices.Reverse(s)
	return s, nil
}

func makePairs[E any](ctx context.Context, work []E, less LessFunc[E]) ([]pair[E], error) {
	pairs := make([]pair[E], 0, len(work)/2)
	for i := 0; i+1 < len(work); i += 2 {
		a, b := work[i], work[i+1]
		lt, err := less(ctx, b, a)
		if err != nil {
			return nil, err
		}
		if lt {
			a, b = b, a
		}
		pairs = append(pairs, pair[E]{small: a, large: b})
	}
	return pairs, nil
}

// sortPairs 按 large 升序对 pairs 做原地插入排序。
func sortPairs[E any](ctx context.Context, pairs []pair[E], less LessFunc[E]) error {
	for i := 1; i < len(pairs); i++ {
		cur := pairs[i]
		j := i - 1
		for j >= 0 {
			lt, err := less(ctx, cur.large, pairs[j].large)
			if err != nil {
				return err
			}
			if !lt {
				break
			}
			pairs[j+1] = pairs[j]
			j--
		}
		pairs[j+1] = cur
	}
	return nil
}

// binaryInsert 在 s 中找到第一个严格大于 x 的位置并插入（相当于 bisect_right），
// 比较次数为 ⌈log2(len(s)+1)⌉。
func binaryInsert[E any](ctx context.Context, s []E, x E, less LessFunc[E]) ([]E, error) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		lt, err := less(ctx, x, s[mid])
		if err != nil {
			return nil, err
		}
		if lt {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return slices.Insert(s, lo, x), nil
}
