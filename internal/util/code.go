package util

import "crypto/rand"

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode 生成 n 位字母数字访问码
func GenerateCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(buf), nil
}
