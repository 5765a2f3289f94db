package similarity

// Jaccard 计算两个 ID 集合的 Jaccard 重合度：|交集| / |并集|。
// 两侧均为空（并集为空）时返回 0：无信号，不是未定义行为。
func Jaccard(a, b map[int64]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for id := range small {
		if _, ok := large[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Intersect 返回两个集合的交集，用于解释生成时定位共享成员。
func Intersect(a, b map[int64]struct{}) []int64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make([]int64, 0, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
