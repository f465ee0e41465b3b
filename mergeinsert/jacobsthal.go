package mergeinsert

// jacobsthalBelow 返回 J(3), J(4), ... 中所有小于 limit 的 Jacobsthal 数。
// J(0)=0, J(1)=1, J(k)=J(k-1)+2·J(k-2)，迭代计算。
func jacobsthalBelow(limit int) []int {
	var seq []int
	prev, cur := 1, 1 // J(1), J(2)
	for {
		prev, cur = cur, cur+2*prev // J(k) 递推
		if cur >= limit {
			return seq
		}
		seq = append(seq, cur)
	}
}

// insertionOrder 返回 pend[1:] 的插入顺序（0-based 下标）。
// pend[0] 已直接放在主序列头部，不在结果中。
//
// 顺序在"下一个 Jacobsthal 下标"与"下一个未用的顺序下标"之间交替；
// used 集合保证每个下标只出现一次。
func insertionOrder(pendLen int) []int {
	if pendLen <= 1 {
		return nil
	}

	// 下标按 1-based 计算：pend[0] 是第 1 个
	jacob := jacobsthalBelow(pendLen - 1)
	used := make(map[int]bool, pendLen)
	used[1] = true
	order := make([]int, 0, pendLen-1)

	iterator := 2
	lastJacob := false
	for iterator <= pendLen {
		if len(jacob) > 0 && !lastJacob {
			idx := jacob[0]
			jacob = jacob[1:]
			if used[idx] {
				continue
			}
			used[idx] = true
			order = append(order, idx-1)
			lastJacob = true
			continue
		}
		if used[iterator] {
			iterator++
			continue
		}
		used[iterator] = true
		order = append(order, iterator-1)
		lastJacob = false
		iterator++
	}
	return order
}
