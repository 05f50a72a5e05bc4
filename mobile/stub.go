//go:build !mobile

// 桌面构建时 mobile 包只保留一个占位符号，
// 绑定代码在 -tags mobile 下由 mobile.go 和 embed.go 提供。
package mobile

// Dummy 供桌面构建引用的空函数
func Dummy() {}
