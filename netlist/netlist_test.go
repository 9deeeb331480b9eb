package netlist

import (
	"testing"

	"github.com/jumppad-labs/hdltarget/design"
	"github.com/stretchr/testify/require"
)

func TestDesignKeepsDeclarationOrder(t *testing.T) {
	d := NewDesign("top")
	d.Add(&Signal{Name: "a", Width: 1}, &Logic{Name: "g1"}, &Bufz{Name: "b1"})

	require.Len(t, d.Elements, 3)
	require.Equal(t, "a", d.Elements[0].ElementName())
	require.Equal(t, KindLogic, d.Elements[1].Kind())
	require.Equal(t, KindBufz, d.Elements[2].Kind())
}

func TestDesignFlagReturnsFalseWhenMissing(t *testing.T) {
	d := NewDesign("top")

	_, ok := d.Flag("-o")
	require.False(t, ok)

	d.SetFlag("-o", "out.txt")
	v, ok := d.Flag("-o")
	require.True(t, ok)
	require.Equal(t, "out.txt", v)
}

func TestFlagNamesAreSorted(t *testing.T) {
	d := &Design{}
	d.SetFlag("-o", "x")
	d.SetFlag("-d", "y")

	require.Equal(t, []string{"-d", "-o"}, d.FlagNames())
}

func TestCountReturnsElementsOfKind(t *testing.T) {
	d := NewDesign("top")
	d.Add(&Signal{Name: "a"}, &Signal{Name: "b"}, &Event{Name: "e"})

	require.Equal(t, 2, d.Count(KindSignal))
	require.Equal(t, 0, d.Count(KindProcess))
}

func TestLogicPinReturnsNexusInOrder(t *testing.T) {
	l := &Logic{Name: "g1", Gate: design.LogicAnd, Nexus: []string{"a", "b", "y"}}

	require.Equal(t, uint(3), l.Pins())
	require.Equal(t, "a", l.Pin(0).Name())
	require.Equal(t, "y", l.Pin(2).Name())
	require.Nil(t, l.Pin(3))
}

func TestBufzWithoutConnectionsReturnsNilNexus(t *testing.T) {
	b := &Bufz{Name: "b"}

	require.Nil(t, b.Input())
	require.Nil(t, b.Output())
}

func TestStatementAccessorsNeverReturnTypedNil(t *testing.T) {
	s := If(nil, nil)

	require.Nil(t, s.True())
	require.Nil(t, s.False())
	require.Nil(t, Delay(3, nil).Sub())
	require.Nil(t, Block().Stmt(0))

	p := &Process{Mode: design.ProcessAlways}
	require.Nil(t, p.Stmt())
}

func TestStatementConstructorsSetTags(t *testing.T) {
	b := Block(Assign(), Delay(5, Noop()), SysTask("$finish"))

	require.Equal(t, design.StatementBlock, b.Type())
	require.Equal(t, uint(3), b.Count())
	require.Equal(t, design.StatementAssign, b.Stmt(0).Type())

	d := b.Stmt(1).(design.Delay)
	require.Equal(t, uint64(5), d.DelayValue())
	require.Equal(t, design.StatementNoop, d.Sub().Type())

	require.Equal(t, "$finish", b.Stmt(2).(design.SysTask).TaskName())
}

func TestProcessElementNameIsProcessType(t *testing.T) {
	p := &Process{Mode: design.ProcessInitial, Body: Noop()}

	require.Equal(t, "initial", p.ElementName())
	require.Equal(t, KindProcess, p.Kind())
}
