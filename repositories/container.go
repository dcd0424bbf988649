package repositories

type Repos struct {
	Contact   ContactRepo
	MultiStep MultiStepRepo
	Dynamic   DynamicRepo
	File      FileRepo
}

func New() *Repos {
	return &Repos{
		Contact:   &DBContactRepo{},
		MultiStep: &DBMultiStepRepo{},
		Dynamic:   &DBDynamicRepo{},
		File:      &DBFileRepo{},
	}
}
