package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobsSeeder{},
		AcademiesSeeder{},
	}
}
