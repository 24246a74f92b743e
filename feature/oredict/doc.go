// Package oredict inverts the ore dictionary so an item can be annotated with the
// alias groups (interchangeable-ingredient names) it belongs to.
package oredict
