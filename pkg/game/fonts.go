package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSource 内置字体源，首次使用时加载
var defaultFontSource *text.GoTextFaceSource

// LoadDefaultFont 加载内置的 Go Regular 字体
//
// 参数：
//   - size: 字号（像素）
//
// 返回：
//   - *text.GoTextFace: 字体
//   - error: 字体数据解析失败时返回错误
func LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	if defaultFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse default font: %w", err)
		}
		defaultFontSource = source
		log.Printf("[Fonts] Default font source loaded")
	}

	return &text.GoTextFace{
		Source: defaultFontSource,
		Size:   size,
	}, nil
}
