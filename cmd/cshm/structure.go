package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/cshm/model"
)

// structureFile is the on-disk shape of the structure file arguments of
// the analyze and batch commands: a pre-parsed
// structure, not an XYZ/CIF file. Chemistry file formats are an external
// collaborator's job (spec.md §1 Non-goals); the CLI only needs the
// already-parsed {id, atoms[]} record the core's Structure loader
// contract describes in spec.md §6.1.
type structureFile struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Source     string      `json:"source"`
	FrameIndex int         `json:"frameIndex"`
	Atoms      []atomEntry `json:"atoms"`
}

type atomEntry struct {
	Element string  `json:"element"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

// loadStructure reads and decodes a structureFile from path into a
// model.Structure.
func loadStructure(path string) (model.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Structure{}, newInputError(fmt.Sprintf("reading %s: %v", path, err))
	}

	var sf structureFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return model.Structure{}, newInputError(fmt.Sprintf("parsing %s: %v", path, err))
	}
	if len(sf.Atoms) == 0 {
		return model.Structure{}, newInputError(fmt.Sprintf("%s: no atoms", path))
	}

	atoms := make([]model.Atom, len(sf.Atoms))
	for i, a := range sf.Atoms {
		atoms[i] = model.Atom{Element: a.Element, X: a.X, Y: a.Y, Z: a.Z}
	}

	return model.Structure{
		ID:         sf.ID,
		Name:       sf.Name,
		Source:     sf.Source,
		FrameIndex: sf.FrameIndex,
		Atoms:      atoms,
	}, nil
}
