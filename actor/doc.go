// Package actor holds the behaviour core of the game: the enemy and player
// state machines, health stats and hit resolution.
//
// Nothing here touches the ECS, the collision space or ebiten. Controllers
// receive their collaborators through EnemyDeps and PlayerDeps at
// construction, and the host calls the exported handlers when the matching
// signal fires.
package actor
