package util

import (
	"fmt"
	"time"
)

// GenerateStorageKey : строит ключ хранения вида "<unix millis>-<имя файла>".
// Ключ устойчив к коллизиям на практике, но не гарантирует уникальность
// криптографически: одновременные загрузки одного имени в одну миллисекунду
// не сериализуются.
func GenerateStorageKey(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)
}
