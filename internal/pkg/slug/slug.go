package slug

import "strings"

// Make 根据标题生成 slug：空格替换为连字符、转小写，
// 并移除 [a-z0-9-] 之外的全部字符。与标题一一对应且确定。
func Make(title string) string {
	s := strings.ToLower(strings.ReplaceAll(title, " ", "-"))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
