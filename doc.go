// Package valuate derives self-consistent relative values for the items
// of a production-recipe graph — what is an ingot worth, in ore, once
// every recipe that makes it and every recipe that uses it has had a say?
//
// 🚀 What is valuate?
//
//	A small engine for crafting/factory economies that brings together:
//		• Recipe catalogs: parse raw game data, index by part and machine
//		• Economy separation: split the catalog into independent families
//		• Equilibrium solving: damped fixed-point iteration over cyclic recipes
//		• Pinning: fix chosen item values exactly, let the rest settle
//		• CSV round-tripping of solved economies
//
// ✨ Why choose valuate?
//
//   - Deterministic – same catalog in, same values out, always
//   - Cycle-proof – recipe loops converge instead of diverging
//   - Pure library – the solve is one synchronous call, no services
//
// Everything is organized under three packages:
//
//	recipe/      — immutable Catalog: parsing, lookups, part classification
//	economy/     — the valuation engine: partition, solve, relax, serialize
//	cmd/valuate/ — CLI front end: values, economies, cost
//
// Quick sketch:
//
//	Iron Ore ──► Iron Ingot ──► Iron Plate
//	  1.0          1.0            1.5
//
// one miner's ore, smelted 1:1 and pressed 3:2, prices a plate at one
// and a half ingots.
//
//	go get github.com/satisgraphery/valuate
package valuate
