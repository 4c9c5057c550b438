// Package roster provides the built-in sample matchup.
package roster

import "github.com/okay-you-very-pro/oyvp/internal/domain"

// SampleMatchup returns the twelve-versus-twelve sample data. Each call
// returns fresh slices.
func SampleMatchup() domain.Matchup {
	return domain.Matchup{
		Allies:  domain.Team{Side: domain.TeamAllies, Players: sampleAllies()},
		Enemies: domain.Team{Side: domain.TeamEnemies, Players: sampleEnemies()},
	}
}

func sampleAllies() []domain.Player {
	return []domain.Player{
		{Name: "Alpha", WinRate: 49.96, Battles: 2754, ShipName: "Ship1", ShipWinRate: 48.5, ShipBattles: 156, PR: 856, AvgDamage: 84849, Frags: 0.8},
		{Name: "Beta", WinRate: 47.22, Battles: 4852, ShipName: "Ship2", ShipWinRate: 51.2, ShipBattles: 342, PR: 1425, AvgDamage: 132932, Frags: 1.2},
		{Name: "Charlie", WinRate: 43.45, Battles: 1991, ShipName: "Ship3", ShipWinRate: 46.8, ShipBattles: 89, PR: 485, AvgDamage: 57493, Frags: 0.6},
		{Name: "Delta", WinRate: 45.02, Battles: 844, ShipName: "Ship4", ShipWinRate: 44.9, ShipBattles: 234, PR: 892, AvgDamage: 71441, Frags: 0.7},
		{Name: "Echo", WinRate: 48.53, Battles: 5110, ShipName: "Ship5", ShipWinRate: 52.1, ShipBattles: 445, PR: 447, AvgDamage: 45591, Frags: 0.9},
		{Name: "Foxtrot", WinRate: 47.3, Battles: 9349, ShipName: "Ship6", ShipWinRate: 49.9, ShipBattles: 678, PR: 1248, AvgDamage: 51313, Frags: 1.1},
		{Name: "Mike", WinRate: 51.23, Battles: 3245, ShipName: "Ship13", ShipWinRate: 52.8, ShipBattles: 234, PR: 1256, AvgDamage: 98765, Frags: 1.3},
		{Name: "November", WinRate: 48.76, Battles: 4123, ShipName: "Ship14", ShipWinRate: 47.5, ShipBattles: 345, PR: 892, AvgDamage: 65432, Frags: 0.8},
		{Name: "Oscar", WinRate: 52.34, Battles: 2876, ShipName: "Ship15", ShipWinRate: 53.2, ShipBattles: 456, PR: 1456, AvgDamage: 112345, Frags: 1.4},
		{Name: "Papa", WinRate: 46.78, Battles: 5678, ShipName: "Ship16", ShipWinRate: 45.9, ShipBattles: 567, PR: 678, AvgDamage: 45678, Frags: 0.7},
		{Name: "Quebec", WinRate: 50.12, Battles: 3456, ShipName: "Ship17", ShipWinRate: 51.5, ShipBattles: 678, PR: 1234, AvgDamage: 87654, Frags: 1.0},
		{Name: "Romeo", WinRate: 49.87, Battles: 4321, ShipName: "Ship18", ShipWinRate: 48.7, ShipBattles: 789, PR: 987, AvgDamage: 76543, Frags: 0.9},
	}
}

func sampleEnemies() []domain.Player {
	return []domain.Player{
		{Name: "Golf", WinRate: 49.92, Battles: 2644, ShipName: "Ship7", ShipWinRate: 53.4, ShipBattles: 223, PR: 1350, AvgDamage: 103170, Frags: 1.2},
		{Name: "Hotel", WinRate: 49.49, Battles: 2623, ShipName: "Ship8", ShipWinRate: 47.8, ShipBattles: 167, PR: 1121, AvgDamage: 139917, Frags: 1.1},
		{Name: "India", WinRate: 49.74, Battles: 2280, ShipName: "Ship9", ShipWinRate: 50.2, ShipBattles: 445, PR: 1236, AvgDamage: 105548, Frags: 1.0},
		{Name: "Juliet", WinRate: 47.21, Battles: 2923, ShipName: "Ship10", ShipWinRate: 46.9, ShipBattles: 332, PR: 892, AvgDamage: 92047, Frags: 0.8},
		{Name: "Kilo", WinRate: 53.43, Battles: 3509, ShipName: "Ship11", ShipWinRate: 55.6, ShipBattles: 221, PR: 962, AvgDamage: 66757, Frags: 1.3},
		{Name: "Lima", WinRate: 51.96, Battles: 4419, ShipName: "Ship12", ShipWinRate: 50.8, ShipBattles: 554, PR: 1009, AvgDamage: 119177, Frags: 1.4},
		{Name: "Sierra", WinRate: 48.45, Battles: 3789, ShipName: "Ship19", ShipWinRate: 49.2, ShipBattles: 456, PR: 876, AvgDamage: 67890, Frags: 0.9},
		{Name: "Tango", WinRate: 52.67, Battles: 2987, ShipName: "Ship20", ShipWinRate: 54.1, ShipBattles: 567, PR: 1345, AvgDamage: 98765, Frags: 1.5},
		{Name: "Uniform", WinRate: 47.89, Battles: 4567, ShipName: "Ship21", ShipWinRate: 46.8, ShipBattles: 678, PR: 765, AvgDamage: 54321, Frags: 0.7},
		{Name: "Victor", WinRate: 50.34, Battles: 3456, ShipName: "Ship22", ShipWinRate: 51.7, ShipBattles: 789, PR: 1123, AvgDamage: 87654, Frags: 1.1},
		{Name: "Whiskey", WinRate: 49.56, Battles: 4321, ShipName: "Ship23", ShipWinRate: 48.9, ShipBattles: 890, PR: 987, AvgDamage: 76543, Frags: 0.8},
		{Name: "Xray", WinRate: 51.78, Battles: 2987, ShipName: "Ship24", ShipWinRate: 52.5, ShipBattles: 567, PR: 1234, AvgDamage: 98765, Frags: 1.2},
	}
}
