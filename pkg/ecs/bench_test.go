package ecs

import "testing"

func benchScene(b *testing.B) *Scene {
	b.Helper()
	s, err := NewScene(Config{LogLevel: "silent"})
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkCreateDestroy(b *testing.B) {
	s := benchScene(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := s.CreateEntity()
		if err != nil {
			b.Fatal(err)
		}
		_ = s.DestroyEntity(e)
	}
}

func BenchmarkAssignComponent(b *testing.B) {
	s := benchScene(b)
	if err := RegisterComponent[position](s); err != nil {
		b.Fatal(err)
	}
	e, _ := s.CreateEntity()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AddComponent(s, e, position{X: float64(i)})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	s := benchScene(b)
	_ = RegisterComponent[position](s)
	e, _ := s.CreateEntity()
	_ = AddComponent(s, e, position{X: 1})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GetComponent[position](s, e); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	s := benchScene(b)
	_ = RegisterComponent[position](s)
	_ = RegisterComponent[velocity](s)
	for i := 0; i < 1024; i++ {
		e, _ := s.CreateEntity()
		_ = AddComponent(s, e, position{})
		if i%2 == 0 {
			_ = AddComponent(s, e, velocity{})
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matched, err := Query2[position, velocity](s)
		if err != nil {
			b.Fatal(err)
		}
		if len(matched) != 512 {
			b.Fatalf("expected 512, got %d", len(matched))
		}
	}
}

func BenchmarkUpdate(b *testing.B) {
	s := benchScene(b)
	_ = RegisterComponent[position](s)
	_ = RegisterComponent[velocity](s)
	if err := s.AddSystem(&mover{}); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		e, _ := s.CreateEntity()
		_ = AddComponent(s, e, position{})
		_ = AddComponent(s, e, velocity{DX: 1, DY: 1})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(0.016)
	}
}
