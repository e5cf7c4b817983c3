package nes

import (
	"encoding/json"
	"os"
	"path"
	"strconv"
	"testing"

	"golang.org/x/exp/maps"
)

// opcodeIsOfficial reports whether the opcode decodes to a documented
// instruction rather than the illegal-opcode placeholder.
func opcodeIsOfficial(opcode uint8) bool {
	return optable[opcode].name != "???"
}

// TestCPU_SingleStep replays the per-opcode JSON cases from the
// SingleStepTests/65x02 corpus. Point SINGLE_STEP_TEST_DIR at the nes6502
// directory to enable it.
func TestCPU_SingleStep(t *testing.T) {
	t.Parallel()

	type cpuState struct {
		PC uint16 `json:"pc"`
		S  uint8  `json:"s"`
		A  uint8  `json:"a"`
		X  uint8  `json:"x"`
		Y  uint8  `json:"y"`
		P  uint8  `json:"p"`

		// slice of elements where
		// element[0] is address
		// element[1] is value
		RAM [][]uint16 `json:"ram"`
	}

	type testInstance struct {
		Name    string   `json:"name"`
		Initial cpuState `json:"initial"`
		Final   cpuState `json:"final"`

		// slice of elements where
		// element[0] is address
		// element[1] is value
		// element[2] is operation (read/write)
		Cycles [][]any `json:"cycles"`
	}

	dir := os.Getenv("SINGLE_STEP_TEST_DIR")
	if dir == "" {
		t.Skip("skipping test because SINGLE_STEP_TEST_DIR is not set")
		return
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	mem := newStepMem(t)
	doTest := func(t *testing.T, test testInstance) {
		mem.reset()
		for _, addrVal := range test.Initial.RAM {
			addr := addrVal[0]
			data := uint8(addrVal[1])
			mem.set(addr, data)
		}
		for _, cyc := range test.Cycles {
			op := cyc[2].(string)
			addr := uint16(cyc[0].(float64))
			data := uint8(cyc[1].(float64))
			mem.allow(op, addr, data)
		}

		cpu := NewCPU()
		cpu.pc = test.Initial.PC
		cpu.sp = test.Initial.S
		cpu.a = test.Initial.A
		cpu.x = test.Initial.X
		cpu.y = test.Initial.Y
		cpu.p = test.Initial.P

		runInstr(cpu, mem)

		if cpu.pc != test.Final.PC {
			t.Fatalf("expected PC %04X, got %04X", test.Final.PC, cpu.pc)
		}
		if cpu.sp != test.Final.S {
			t.Fatalf("expected S %02X, got %02X", test.Final.S, cpu.sp)
		}
		if cpu.a != test.Final.A {
			t.Fatalf("expected A %02X, got %02X", test.Final.A, cpu.a)
		}
		if cpu.x != test.Final.X {
			t.Fatalf("expected X %02X, got %02X", test.Final.X, cpu.x)
		}
		if cpu.y != test.Final.Y {
			t.Fatalf("expected Y %02X, got %02X", test.Final.Y, cpu.y)
		}
		if cpu.p != test.Final.P {
			t.Fatalf("expected P %02X, got %02X", test.Final.P, cpu.p)
		}

		for _, addrVal := range test.Final.RAM {
			addr := addrVal[0]
			data := uint8(addrVal[1])
			mem.mustBe(addr, data)
		}
	}

	var tests []testInstance
	for _, file := range files {
		opcodeStr := path.Base(file.Name())[:2]
		opcode, err := strconv.ParseUint(opcodeStr, 16, 8)
		if err != nil {
			t.Fatalf("failed to parse opcode from file name %s: %v", file.Name(), err)
		}

		fileData, err := os.ReadFile(dir + "/" + file.Name())
		if err != nil {
			t.Fatalf("failed to read file %s: %v", file.Name(), err)
		}

		tests = tests[:0]
		err = json.Unmarshal(fileData, &tests)
		if err != nil {
			t.Fatalf("failed to unmarshal file %s: %v", file.Name(), err)
		}

		t.Run(file.Name(), func(t *testing.T) {
			if !opcodeIsOfficial(uint8(opcode)) {
				t.Skipf("skipping opcode %02X: illegal opcodes decode to a placeholder", opcode)
				return
			}
			for _, test := range tests {
				doTest(t, test)
			}
		})
	}
}

// stepMem is a flat memory that rejects writes the replayed cycle trace
// does not allow.
type stepMem struct {
	t       *testing.T
	data    []uint8
	allowed map[uint32]struct{}
}

func newStepMem(t *testing.T) *stepMem {
	return &stepMem{
		t:       t,
		data:    make([]uint8, 0x10000),
		allowed: make(map[uint32]struct{}),
	}
}

func (m *stepMem) asUint32(_ string, addr uint16, data uint8) uint32 {
	return uint32(addr) | uint32(data)<<16
}

func (m *stepMem) allow(op string, addr uint16, data uint8) {
	m.allowed[m.asUint32(op, addr, data)] = struct{}{}
}

func (m *stepMem) mustBe(addr uint16, data uint8) {
	if m.data[addr] != data {
		m.t.Fatalf("expected %02X at address %04X, got %02X", data, addr, m.data[addr])
	}
}

func (m *stepMem) set(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *stepMem) reset() {
	for i := range m.data {
		m.data[i] = 0
	}
	maps.Clear(m.allowed)
}

func (m *stepMem) Read8(addr uint16) uint8 {
	// reads do not change memory, nothing to check
	return m.data[addr]
}

func (m *stepMem) Peek8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *stepMem) Write8(addr uint16, data uint8) {
	_, ok := m.allowed[m.asUint32("write", addr, data)]
	if !ok {
		m.t.Fatalf("not allowed write to address %04X with value %02X", addr, data)
	}
	m.data[addr] = data
}
