package fuzztests

import "testing"

// maxFuzzInput bounds one input; larger inputs are cut.
const maxFuzzInput = 1 << 16 // 64 KiB

var seeds = []string{
	"",
	"Module M\n    Sub Main()\n    End Sub\nEnd Module\n",
	"Option Strict On\nOption Explicit On\nImports System\n",
	"Class C\n    ''' <summary>Doc.</summary>\n    Public Property Name As String\nEnd Class\n",
	"Sub F()\n    Try\n        Work()\n    Catch ex As Exception\n    End Try\nEnd Sub\n",
	"For i = 0 To 10\n    For Each x In xs\n        xs.Remove(x)\n    Next\nNext\n",
	"Dim s = \"a\" & b & $\"{c}\" & \"\"\n",
	"If a And b Then x = IIf(c, 1, 2) Else y = CType(o, String)\n",
	"Select Case v\n    Case 1, 2\n    Case Is > 3\n    Case Else\nEnd Select\n",
	"<Flags>\nEnum E\n    A = 1\n    B = A Or 2\nEnd Enum\n",
	"Dim x = _\n    1 + _\n    2\n",
	"x = #1/2/2003# : y = &HFF& : z = 1.5D\n",
	"REM comment\n' comment\n#Region \"r\"\n#End Region\n",
	// незакрытые блоки и мусор
	"Sub F(\n",
	"If Then Else End If\n",
	"Class\nEnd Sub\nNext\n",
	"\"unterminated\n",
	"[bracketed\n",
	"using System; namespace N { class C { } }\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
