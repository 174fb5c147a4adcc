package components

// LabelComponent 实体名称，仅用于日志与调试
type LabelComponent struct {
	Name string
}
