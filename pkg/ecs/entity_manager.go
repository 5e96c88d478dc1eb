package ecs

import (
	"reflect"
	"slices"
)

// EntityID 实体标识，0 保留为无效ID
type EntityID uint64

// EntityManager 保存实体及其组件
//
// 组件以指针形式按类型存放，每个实体每种类型最多一个。
// 查询按实体创建顺序返回，移除实体不会打乱其余实体的顺序，
// 烟花的绘制先后依赖这一点。
type EntityManager struct {
	lastID  EntityID
	store   map[EntityID]map[reflect.Type]any
	alive   []EntityID // 创建顺序
	pending []EntityID // 等待 RemoveMarkedEntities 的实体
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		store: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 分配一个新实体，ID 单调递增且不复用
func (em *EntityManager) CreateEntity() EntityID {
	em.lastID++
	id := em.lastID
	em.store[id] = make(map[reflect.Type]any)
	em.alive = append(em.alive, id)
	return id
}

// DestroyEntity 标记删除；实体在下一次 RemoveMarkedEntities 之前仍可访问
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending = append(em.pending, id)
}

// DestroyAll 标记所有实体
func (em *EntityManager) DestroyAll() {
	em.pending = append(em.pending, em.alive...)
}

// AddComponent 挂载组件，同类型的旧组件被替换；未知实体忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if comps, ok := em.store[id]; ok {
		comps[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 卸下指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	delete(em.store[id], componentType)
}

// GetComponent 按类型取组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.store[id][componentType]
	return comp, ok
}

// HasComponent 实体是否挂有该类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.store[id][componentType]
	return ok
}

// Exists 实体是否存在（已标记未清理的也算）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.store[id]
	return ok
}

// EntityCount 当前实体数（含已标记未清理的）
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// RemoveMarkedEntities 真正删除所有被标记的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.pending) == 0 {
		return
	}
	for _, id := range em.pending {
		delete(em.store, id)
	}
	em.pending = em.pending[:0]

	em.alive = slices.DeleteFunc(em.alive, func(id EntityID) bool {
		_, ok := em.store[id]
		return !ok
	})
}

// GetEntitiesWith 返回挂有全部指定类型组件的实体，按创建顺序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0, len(em.alive))
	for _, id := range em.alive {
		comps := em.store[id]
		if hasAll(comps, componentTypes) {
			result = append(result, id)
		}
	}
	return result
}

func hasAll(comps map[reflect.Type]any, types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := comps[t]; !ok {
			return false
		}
	}
	return true
}
