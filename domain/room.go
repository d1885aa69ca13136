// Package domain contains core concepts of the broker.
// This file defines room identifiers and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "fmt"

// RoomID is an implicit "scope:key" audience name. Rooms are not stored
// entities; a room exists exactly as long as it has members.
type RoomID string

func UserRoom(userID string) RoomID {
	return RoomID(fmt.Sprintf("user:%s", userID))
}

// RoleRoom addresses every connection a user holds under a given role,
// e.g. waiter:123. Together with UserRoom it forms the identity rooms a
// session can never leave.
func RoleRoom(role, userID string) RoomID {
	return RoomID(fmt.Sprintf("%s:%s", role, userID))
}

func RestaurantRoom(restaurantID string) RoomID {
	return RoomID(fmt.Sprintf("restaurant:%s", restaurantID))
}

func KitchenRoom(restaurantID string) RoomID {
	return RoomID(fmt.Sprintf("kitchen:%s", restaurantID))
}

func TableRoom(tableID string) RoomID {
	return RoomID(fmt.Sprintf("table:%s", tableID))
}
