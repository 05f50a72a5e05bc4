//go:build !android

package utils

// EnsureStorageDir 桌面平台由 gdata 自行创建目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 桌面平台返回空字符串，路径由 gdata 决定
func GetStoragePath() string {
	return ""
}
