package ecs

import (
	"reflect"
	"slices"
	"testing"
)

// 测试用组件：模拟发射体的位置与速度
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

var (
	posType = reflect.TypeOf(&testPositionComponent{})
	velType = reflect.TypeOf(&testVelocityComponent{})
)

func TestCreateEntityIDsIncrease(t *testing.T) {
	em := NewEntityManager()

	var got []EntityID
	for range 3 {
		got = append(got, em.CreateEntity())
	}

	// 0 保留为无效ID
	want := []EntityID{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("CreateEntity ids = %v, want %v", got, want)
	}
	if em.EntityCount() != 3 {
		t.Errorf("EntityCount() = %d, want 3", em.EntityCount())
	}
}

func TestComponentLifecycle(t *testing.T) {
	em := NewEntityManager()
	rocket := em.CreateEntity()

	if em.HasComponent(rocket, posType) {
		t.Fatal("fresh entity must not carry a position")
	}

	em.AddComponent(rocket, &testPositionComponent{X: 640, Y: 700})
	em.AddComponent(rocket, &testVelocityComponent{VY: -8})

	comp, ok := em.GetComponent(rocket, posType)
	if !ok {
		t.Fatal("position should be attached")
	}
	if p := comp.(*testPositionComponent); p.X != 640 || p.Y != 700 {
		t.Errorf("position = (%v, %v), want (640, 700)", p.X, p.Y)
	}

	// 同类型组件覆盖旧值
	em.AddComponent(rocket, &testPositionComponent{X: 1, Y: 2})
	comp, _ = em.GetComponent(rocket, posType)
	if p := comp.(*testPositionComponent); p.X != 1 {
		t.Errorf("replaced position X = %v, want 1", p.X)
	}

	em.RemoveComponent(rocket, velType)
	if em.HasComponent(rocket, velType) {
		t.Error("velocity should be gone after RemoveComponent")
	}
	if !em.HasComponent(rocket, posType) {
		t.Error("RemoveComponent must not touch other component types")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPositionComponent{})

	if em.Exists(EntityID(42)) {
		t.Error("AddComponent must not create entities implicitly")
	}
	if _, ok := em.GetComponent(EntityID(42), posType); ok {
		t.Error("unknown entity should have no components")
	}
}

func TestDeferredDestroy(t *testing.T) {
	tests := []struct {
		name    string
		destroy []int // 按创建下标标记删除
		want    []int // 清理后按创建顺序剩余的下标
	}{
		{"不删除", nil, []int{0, 1, 2, 3, 4}},
		{"删除首个", []int{0}, []int{1, 2, 3, 4}},
		{"删除中间与末尾", []int{2, 4}, []int{0, 1, 3}},
		{"重复标记", []int{1, 1}, []int{0, 2, 3, 4}},
		{"全部删除", []int{0, 1, 2, 3, 4}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := NewEntityManager()
			ids := make([]EntityID, 5)
			for i := range ids {
				ids[i] = em.CreateEntity()
				em.AddComponent(ids[i], &testPositionComponent{X: float64(i)})
			}

			for _, i := range tt.destroy {
				em.DestroyEntity(ids[i])
			}

			// 标记后、清理前实体仍然存在
			for _, i := range tt.destroy {
				if !em.Exists(ids[i]) {
					t.Fatalf("entity %d vanished before RemoveMarkedEntities", ids[i])
				}
			}

			em.RemoveMarkedEntities()

			var want []EntityID
			for _, i := range tt.want {
				want = append(want, ids[i])
			}
			got := em.GetEntitiesWith(posType)
			if len(got) != len(want) || (len(want) > 0 && !slices.Equal(got, want)) {
				t.Errorf("remaining = %v, want %v", got, want)
			}
			if em.EntityCount() != len(want) {
				t.Errorf("EntityCount() = %d, want %d", em.EntityCount(), len(want))
			}
		})
	}
}

func TestGetEntitiesWithFilters(t *testing.T) {
	em := NewEntityManager()

	moving := em.CreateEntity()
	em.AddComponent(moving, &testPositionComponent{})
	em.AddComponent(moving, &testVelocityComponent{})

	still := em.CreateEntity()
	em.AddComponent(still, &testPositionComponent{})

	ghost := em.CreateEntity()
	em.AddComponent(ghost, &testVelocityComponent{})

	tests := []struct {
		name  string
		types []reflect.Type
		want  []EntityID
	}{
		{"position", []reflect.Type{posType}, []EntityID{moving, still}},
		{"velocity", []reflect.Type{velType}, []EntityID{moving, ghost}},
		{"position+velocity", []reflect.Type{posType, velType}, []EntityID{moving}},
		{"no filter returns all", nil, []EntityID{moving, still, ghost}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.GetEntitiesWith(tt.types...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("GetEntitiesWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	for range 3 {
		em.CreateEntity()
	}

	em.DestroyAll()
	if em.EntityCount() != 3 {
		t.Error("DestroyAll should only mark entities")
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d after cleanup, want 0", em.EntityCount())
	}

	// 清理后新建实体ID继续递增
	if id := em.CreateEntity(); id != 4 {
		t.Errorf("next entity ID = %d, want 4", id)
	}
}
