package systems

import (
	"sort"

	"github.com/automoto/swoopers/components"
	"github.com/automoto/swoopers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// GetRun returns the run singleton.
func GetRun(e *ecs.ECS) *components.RunData {
	return components.Run.Get(components.Run.MustFirst(e.World))
}

// GetFormation returns the formation timing singleton.
func GetFormation(e *ecs.ECS) *components.FormationData {
	return components.Formation.Get(components.Formation.MustFirst(e.World))
}

// GetRuntime returns the collaborators the simulation runs against.
func GetRuntime(e *ecs.ECS) *components.RuntimeData {
	return components.Runtime.Get(components.Runtime.MustFirst(e.World))
}

func getSpace(e *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(e.World))
}

// GetPlayer returns the player entry, if one exists.
func GetPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// destroy removes an entry and its collision object from the world.
func destroy(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}

// destroyAll removes every entry carrying tag.
func destroyAll(e *ecs.ECS, tag donburi.IComponentType) {
	var doomed []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		destroy(e, entry)
	}
}

// enemiesByIndex returns every enemy sorted by spawn index, the order in
// which per-enemy random draws are made.
func enemiesByIndex(e *ecs.ECS) []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemies = append(enemies, entry)
	})
	sort.Slice(enemies, func(i, j int) bool {
		return components.Enemy.Get(enemies[i]).Index < components.Enemy.Get(enemies[j]).Index
	})
	return enemies
}

// bulletsBySeq returns every entry carrying tag sorted oldest first.
func bulletsBySeq(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var bullets []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		bullets = append(bullets, entry)
	})
	sort.Slice(bullets, func(i, j int) bool {
		return components.Bullet.Get(bullets[i]).Seq < components.Bullet.Get(bullets[j]).Seq
	})
	return bullets
}
