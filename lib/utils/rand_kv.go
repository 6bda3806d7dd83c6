package utils

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	randStr = rand.New(rand.NewSource(time.Now().UnixNano()))
	letters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

// GetTestKey 生成测试用的 key
func GetTestKey(i int) []byte {
	return []byte(fmt.Sprintf("gossdb-key-%09d", i))
}

// RandomValue 生成 "gossdb-value-" 前缀加 n 个随机字符的 value（总长 13+n）
func RandomValue(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[randStr.Intn(len(letters))]
	}
	return append([]byte("gossdb-value-"), b...)
}
