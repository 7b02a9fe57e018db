package utils

import "strings"

// NormalizeCNPJ 去掉格式符号，只保留数字
func NormalizeCNPJ(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ 14 位数字且校验位正确
func ValidCNPJ(s string) bool {
	digits := NormalizeCNPJ(s)
	if len(digits) != 14 {
		return false
	}
	// 全部相同的号码校验位能通过，但不是有效 CNPJ
	if strings.Count(digits, digits[:1]) == 14 {
		return false
	}

	n := make([]int, 14)
	for i := range digits {
		n[i] = int(digits[i] - '0')
	}
	return n[12] == cnpjCheckDigit(n[:12], cnpjWeights1) &&
		n[13] == cnpjCheckDigit(n[:13], cnpjWeights2)
}

func cnpjCheckDigit(n, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += n[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
