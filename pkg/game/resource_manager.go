package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gonewx/fireworks/internal/audio"
	"github.com/gonewx/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath 默认资源配置路径
const DefaultResourceConfigPath = "data/resources.yaml"

// ResourceManager 负责音效资源的加载和缓存
//
// 所有音效统一解码成 16 位小端双声道 PCM（与 audio.Context 采样率一致），
// 按资源ID缓存。AudioManager 每次播放时基于缓存的 PCM 创建新的播放器，
// 同一音效因此可以重叠播放。
//
// 资源文件优先从嵌入文件系统读取，其次读取磁盘；都不存在时由 LoadSounds
// 用合成音效代替。
//
// 非线程安全：只在主循环中使用。
type ResourceManager struct {
	sampleRate int
	pcmCache   map[string][]byte // 资源ID -> PCM

	config      *ResourceConfig
	resourceMap map[string]string // 资源ID -> 文件路径
}

// NewResourceManager 创建资源管理器
//
// 参数:
//   - sampleRate: 解码目标采样率（应与 audio.Context 一致，通常为 48000）
func NewResourceManager(sampleRate int) *ResourceManager {
	return &ResourceManager{
		sampleRate:  sampleRate,
		pcmCache:    make(map[string][]byte),
		resourceMap: make(map[string]string),
	}
}

// SampleRate 返回解码采样率
func (rm *ResourceManager) SampleRate() int {
	return rm.sampleRate
}

// readResource 读取资源文件，嵌入文件系统优先
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadResourceConfig 加载资源配置文件并建立 ID -> 路径映射
//
// 示例:
//
//	rm := NewResourceManager(48000)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.ParseResourceConfig(data)
}

// ParseResourceConfig 解析 YAML 格式的资源配置
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap 构建资源ID到完整路径的映射
//
//	SOUND_LAUNCH -> data/sounds/launch.mp3
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".mp3"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// SoundPath 返回资源ID对应的文件路径
func (rm *ResourceManager) SoundPath(soundID string) (string, bool) {
	path, ok := rm.resourceMap[soundID]
	return path, ok
}

// SoundIDs 返回配置中的全部音效ID（排序后）
func (rm *ResourceManager) SoundIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadSoundEffect 读取并解码音效文件（.mp3 / .ogg）为 PCM
//
// 解码时重采样到 rm.sampleRate，返回的数据可直接交给 audio.Context.NewPlayerFromBytes。
func (rm *ResourceManager) LoadSoundEffect(path string) ([]byte, error) {
	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	var stream io.Reader
	switch ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound effect %s: %w", path, err)
	}
	return pcm, nil
}

// LoadSoundByID 按资源ID加载音效并缓存
func (rm *ResourceManager) LoadSoundByID(soundID string) ([]byte, error) {
	if pcm, ok := rm.pcmCache[soundID]; ok {
		return pcm, nil
	}

	path, ok := rm.resourceMap[soundID]
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", soundID)
	}

	pcm, err := rm.LoadSoundEffect(path)
	if err != nil {
		return nil, err
	}
	rm.pcmCache[soundID] = pcm
	return pcm, nil
}

// RegisterSoundPCM 直接注册 PCM 数据（合成音效使用）
func (rm *ResourceManager) RegisterSoundPCM(soundID string, pcm []byte) {
	rm.pcmCache[soundID] = pcm
}

// GetSoundPCM 返回已缓存的 PCM，未加载时返回 nil, false
func (rm *ResourceManager) GetSoundPCM(soundID string) ([]byte, bool) {
	pcm, ok := rm.pcmCache[soundID]
	return pcm, ok
}

// LoadSounds 加载音效，文件缺失或解码失败时使用合成音效
//
// 参数:
//   - fallbacks: 资源ID -> 合成音效种类
//
// 返回:
//   - int: 使用合成音效代替的数量
func (rm *ResourceManager) LoadSounds(fallbacks map[string]audio.Clip) int {
	synthesized := 0
	ids := make([]string, 0, len(fallbacks))
	for id := range fallbacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		_, err := rm.LoadSoundByID(id)
		if err == nil {
			log.Printf("[ResourceManager] 已加载音效 %s", id)
			continue
		}
		log.Printf("[ResourceManager] 音效 %s 不可用 (%v)，使用合成音效", id, err)
		rm.RegisterSoundPCM(id, audio.SynthesizePCM(fallbacks[id], rm.sampleRate, 1.0))
		synthesized++
	}
	return synthesized
}
