package air

import (
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"github.com/BurntSushi/toml"
)

// The operand spec is an input artifact: it authoritatively describes,
// per opcode and arity, the role/bank/width of every operand slot.
// Any inconsistency in it is a build defect, so the loader panics.

//go:embed opdefs.toml
var opdefsSource string

type opdefsFile struct {
	Ops []opdefEntry `toml:"op"`
}

type opdefEntry struct {
	Name  string      `toml:"name"`
	Forms []opdefForm `toml:"form"`
}

type opdefForm struct {
	Args []string `toml:"args"`
}

var formTable = buildFormTable(opdefsSource)

func buildFormTable(source string) []uint8 {
	var file opdefsFile
	if _, err := toml.Decode(source, &file); err != nil {
		panic(fmt.Errorf("air: bad operand spec: %w", err))
	}

	table := make([]uint8, int(NumOpcodes)*formRowStride)
	for _, def := range file.Ops {
		op, ok := opcodeIndex[def.Name]
		if !ok {
			panic(fmt.Errorf("air: operand spec names unknown opcode %q", def.Name))
		}
		if op.IsIrregular() {
			panic(fmt.Errorf("air: operand spec describes irregular opcode %s", op))
		}
		for _, form := range def.Forms {
			n := len(form.Args)
			if n == 0 || n > maxFormOperands {
				panic(fmt.Errorf("air: %s form has %d operands, supported range is 1..%d", op, n, maxFormOperands))
			}
			base := int(op)*formRowStride + formOffset(n)
			if formIsDefined(table[base]) {
				panic(fmt.Errorf("air: %s defines arity %d twice", op, n))
			}
			for i, spec := range form.Args {
				f, err := parseOperandForm(spec)
				if err != nil {
					panic(fmt.Errorf("air: %s operand %d: %w", op, i, err))
				}
				table[base+i] = packForm(f)
			}
		}
	}
	return table
}

var roleIndex = buildRoleIndex()

func buildRoleIndex() map[string]ArgRole {
	index := make(map[string]ArgRole, NumRoles)
	for r := ArgRole(0); r < NumRoles; r++ {
		index[roleNames[r]] = r
	}
	return index
}

// parseOperandForm decodes one "Role:Bank:Width" slot spec.
func parseOperandForm(spec string) (OperandForm, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return OperandForm{}, fmt.Errorf("malformed slot spec %q", spec)
	}

	role, ok := roleIndex[parts[0]]
	if !ok {
		return OperandForm{}, fmt.Errorf("unknown role %q", parts[0])
	}

	var bank Bank
	switch parts[1] {
	case "GP":
		bank = GP
	case "FP":
		bank = FP
	default:
		return OperandForm{}, fmt.Errorf("unknown bank %q", parts[1])
	}

	bits, err := strconv.Atoi(parts[2])
	if err != nil {
		return OperandForm{}, fmt.Errorf("bad width %q", parts[2])
	}
	var width Width
	switch bits {
	case 8:
		width = W8
	case 16:
		width = W16
	case 32:
		width = W32
	case 64:
		width = W64
	default:
		return OperandForm{}, fmt.Errorf("unsupported width %d", bits)
	}

	return OperandForm{Role: role, Bank: bank, Width: width}, nil
}
