package ecs

import "testing"

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testPositionComponent] should succeed")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("expected (3, 4), got (%v, %v)", pos.X, pos.Y)
	}

	// 未添加的组件类型
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("GetComponent[*testVelocityComponent] should fail")
	}

	// 不存在的实体
	if _, ok := GetComponent[*testPositionComponent](em, EntityID(999)); ok {
		t.Error("GetComponent on unknown entity should fail")
	}
}

func TestGenericHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testVelocityComponent{})

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("entity should have velocity component")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("entity should not have position component")
	}
}

func TestGenericGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", both, id1)
	}

	positions := GetEntitiesWith1[*testPositionComponent](em)
	if len(positions) != 2 || positions[0] != id1 || positions[1] != id2 {
		t.Errorf("GetEntitiesWith1 = %v, want [%d %d]", positions, id1, id2)
	}
}
