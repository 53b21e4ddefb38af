package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// componentStore 同一种组件在所有实体上的实例
type componentStore map[EntityID]interface{}

// EntityManager 管理一局游戏中的实体和组件
//
// 组件按类型分桶存储，查询时从最小的桶开始筛选。
// 每一局游戏拥有独立的 EntityManager（见 systems.RoundSystem），
// 局结束或重开时通过 DestroyAll 整体释放，不会把上一局的实体带入下一局。
//
// 非并发安全，只能在游戏循环所在的 goroutine 上使用。
type EntityManager struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores map[reflect.Type]componentStore

	// 延迟删除：DestroyEntity 只做标记，RemoveMarkedEntities 统一清理
	marked  map[EntityID]struct{}
	pending []EntityID
}

// NewEntityManager 创建空的 EntityManager
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]componentStore),
		marked: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// Exists 检查实体是否存在（已标记删除但尚未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// DestroyEntity 标记实体待删除，重复标记和不存在的实体都会被忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	if _, dup := em.marked[id]; dup {
		return
	}
	em.marked[id] = struct{}{}
	em.pending = append(em.pending, id)
}

// IsMarked 实体是否已被标记删除
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// DestroyAll 立即删除所有实体
// ID 计数器不重置，旧 ID 不会被复用
func (em *EntityManager) DestroyAll() {
	em.alive = make(map[EntityID]struct{})
	em.stores = make(map[reflect.Type]componentStore)
	em.marked = make(map[EntityID]struct{})
	em.pending = em.pending[:0]
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	em.put(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) put(id EntityID, componentType reflect.Type, component interface{}) {
	if !em.Exists(id) {
		return
	}
	store, ok := em.stores[componentType]
	if !ok {
		store = make(componentStore)
		em.stores[componentType] = store
	}
	store[id] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		delete(store, id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	store, ok := em.stores[componentType]
	if !ok {
		return nil, false
	}
	comp, ok := store[id]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pending {
		delete(em.alive, id)
		for _, store := range em.stores {
			delete(store, id)
		}
	}
	em.pending = em.pending[:0]
	em.marked = make(map[EntityID]struct{})
}

// GetEntitiesWith 查询同时拥有全部指定组件的实体
// 结果按 ID 升序（即创建顺序）排列；不传组件类型时返回所有存活实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	if len(componentTypes) == 0 {
		for id := range em.alive {
			result = append(result, id)
		}
		sortIDs(result)
		return result
	}

	stores := make([]componentStore, 0, len(componentTypes))
	for _, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok || len(store) == 0 {
			return result
		}
		stores = append(stores, store)
	}
	sort.Slice(stores, func(i, j int) bool { return len(stores[i]) < len(stores[j]) })

	for id := range stores[0] {
		hasAll := true
		for _, store := range stores[1:] {
			if _, found := store[id]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	// map 遍历顺序随机，排序后绘制顺序和点击命中顺序才稳定
	sortIDs(result)
	return result
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
