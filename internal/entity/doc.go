// Package entity holds the simulated objects of the shooter: ships, enemies,
// projectiles and explosions. Entities know their own movement and animation
// rules and nothing else; ownership and removal belong to the simulation.
package entity
