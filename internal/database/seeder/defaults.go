package seeder

// Defaults lists the stock seeders in dependency order: skills first,
// since roles, jobs and question banks all reference them by name.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		RolesSeeder{},
		JobsSeeder{},
		QuestionsSeeder{},
	}
}
