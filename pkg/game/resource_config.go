package game

// ResourceConfig 音效资源配置（data/resources.yaml）
//
// 结构:
//
//	version: "1.0"
//	base_path: data
//	groups:
//	  init:
//	    sounds:
//	      - id: SOUND_LAUNCH
//	        path: sounds/launch.mp3
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"` // 所有资源路径的前缀
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组可以一起加载的资源
type ResourceGroup struct {
	Sounds []SoundResource `yaml:"sounds"`
}

// SoundResource 单个音效定义
//
// Path 为相对 base_path 的路径；省略扩展名时默认 .mp3
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath 拼接 base_path 和相对路径
//
// 示例: ("data", "sounds/launch.mp3") -> "data/sounds/launch.mp3"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
