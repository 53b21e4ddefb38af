// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置数据。
//
// 以 "data/" 开头的路径从嵌入文件系统读取（使用前必须调用 Init()），
// 其他路径视为磁盘路径，直接从本地文件系统读取（用于 -config 参数和测试）。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// dataPrefix 嵌入资源的路径前缀
const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// errNotInitialized 未调用 Init() 时返回的错误
var errNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// isEmbeddedPath 判断路径是否指向嵌入资源
func isEmbeddedPath(path string) bool {
	return strings.HasPrefix(path, dataPrefix)
}

// Open 打开文件
// "data/" 路径从嵌入文件系统打开，其余路径从磁盘打开
func Open(path string) (fs.File, error) {
	path = normalize(path)
	if !isEmbeddedPath(path) {
		return os.Open(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return dataFS.Open(path)
}

// ReadFile 读取文件内容
// "data/" 路径从嵌入文件系统读取，其余路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	if !isEmbeddedPath(path) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入文件系统中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, errNotInitialized
	}

	pattern = normalize(pattern)
	if !isEmbeddedPath(pattern) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	return fs.Glob(dataFS, pattern)
}
