package instructions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type basicEntry struct {
	Example     string `yaml:"example"`
	Format      Format `yaml:"format"`
	Template    string `yaml:"template"`
	Description string `yaml:"description,omitempty"`
}

type pseudoEntry struct {
	Example     string   `yaml:"example"`
	Description string   `yaml:"description,omitempty"`
	Expansion   []string `yaml:"expansion,omitempty"`
}

// On disk representation of an instruction catalogue
type catalogueFile struct {
	Instructions []basicEntry  `yaml:"instructions"`
	Pseudo       []pseudoEntry `yaml:"pseudo,omitempty"`
}

var ErrInvalidCatalogue = errors.New("invalid instruction catalogue")

// Reads an instruction catalogue in YAML format:
//
//	instructions:
//	  - example: "add t1, t2, t3"
//	    format: normal
//	    template: "0000000 ttttt sssss 000 fffff 0110011"
//	    description: Addition
//	pseudo:
//	  - example: "nop"
//	    expansion: ["addi x0, x0, 0"]
func LoadCatalogue(r io.Reader) (*InstructionsDescriptor, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file catalogueFile

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	instructions := make([]Instruction, 0, len(file.Instructions)+len(file.Pseudo))

	for i, entry := range file.Instructions {
		instr, err := NewBasicInstruction(entry.Example, entry.Format, entry.Template, entry.Description)

		if err != nil {
			return nil, fmt.Errorf("%w: instruction #%v: %w", ErrInvalidCatalogue, i, err)
		}

		instructions = append(instructions, instr)
	}

	for i, entry := range file.Pseudo {
		instr, err := NewPseudoInstruction(entry.Example, entry.Description, entry.Expansion...)

		if err != nil {
			return nil, fmt.Errorf("%w: pseudo instruction #%v: %w", ErrInvalidCatalogue, i, err)
		}

		instructions = append(instructions, instr)
	}

	return NewInstructionsDescriptor(instructions), nil
}

// Writes the catalogue in the format read by LoadCatalogue()
func (d *InstructionsDescriptor) WriteYAML(w io.Writer) error {
	var file catalogueFile

	for _, instr := range d.instructions {
		switch i := instr.(type) {
		case *BasicInstruction:
			file.Instructions = append(file.Instructions, basicEntry{
				Example:     i.Example,
				Format:      i.Format,
				Template:    i.Template,
				Description: i.Description,
			})
		case *PseudoInstruction:
			file.Pseudo = append(file.Pseudo, pseudoEntry{
				Example:     i.Example,
				Description: i.Description,
				Expansion:   i.Expansion,
			})
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(&file); err != nil {
		return err
	}

	return encoder.Close()
}

// Returns the builtin catalogue extended with the definitions of a YAML catalogue
// file. An empty path returns the builtin catalogue
func ExtendWithFile(path string) (*InstructionsDescriptor, error) {
	if path == "" {
		return Instructions, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	extra, err := LoadCatalogue(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return Instructions.Extend(extra), nil
}
