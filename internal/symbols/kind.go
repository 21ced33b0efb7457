package symbols

// Kind is the closed tagged-variant discriminator every Symbol carries
// (spec.md §3). Dispatch for scope-shaped behaviour (fill_members) is by
// kind, not by a type hierarchy: concrete constructors attach the right
// filler closure once, at construction time.
type Kind int

const (
	Unknown Kind = iota
	KindRoot
	KindDynamicScope
	KindCompilationUnit
	KindIntegralType
	KindRealType
	KindStringType
	KindCHandleType
	KindVoidType
	KindEventType
	KindEnumType
	KindTypeAlias
	KindParameter
	KindEnumValue
	KindModule
	KindInterface
	KindModport
	KindModuleInstance
	KindInterfaceInstance
	KindPackage
	KindExplicitImport
	KindImplicitImport
	KindWildcardImport
	KindProgram
	KindAttribute
	KindGenvar
	KindIfGenerate
	KindLoopGenerate
	KindGenerateBlock
	KindProceduralBlock
	KindSequentialBlock
	KindVariable
	KindInstance
	KindFormalArgument
	KindSubroutine
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindDynamicScope:
		return "DynamicScope"
	case KindCompilationUnit:
		return "CompilationUnit"
	case KindIntegralType:
		return "IntegralType"
	case KindRealType:
		return "RealType"
	case KindStringType:
		return "StringType"
	case KindCHandleType:
		return "CHandleType"
	case KindVoidType:
		return "VoidType"
	case KindEventType:
		return "EventType"
	case KindEnumType:
		return "EnumType"
	case KindTypeAlias:
		return "TypeAlias"
	case KindParameter:
		return "Parameter"
	case KindEnumValue:
		return "EnumValue"
	case KindModule:
		return "Module"
	case KindInterface:
		return "Interface"
	case KindModport:
		return "Modport"
	case KindModuleInstance:
		return "ModuleInstance"
	case KindInterfaceInstance:
		return "InterfaceInstance"
	case KindPackage:
		return "Package"
	case KindExplicitImport:
		return "ExplicitImport"
	case KindImplicitImport:
		return "ImplicitImport"
	case KindWildcardImport:
		return "WildcardImport"
	case KindProgram:
		return "Program"
	case KindAttribute:
		return "Attribute"
	case KindGenvar:
		return "Genvar"
	case KindIfGenerate:
		return "IfGenerate"
	case KindLoopGenerate:
		return "LoopGenerate"
	case KindGenerateBlock:
		return "GenerateBlock"
	case KindProceduralBlock:
		return "ProceduralBlock"
	case KindSequentialBlock:
		return "SequentialBlock"
	case KindVariable:
		return "Variable"
	case KindInstance:
		return "Instance"
	case KindFormalArgument:
		return "FormalArgument"
	case KindSubroutine:
		return "Subroutine"
	default:
		return "Unknown"
	}
}

// isScopeKind reports whether symbols of this kind are always constructed
// as a Scope (vs. a plain Symbol). Nothing calls it at present; the
// concrete constructors are the source of truth.
func isScopeKind(k Kind) bool {
	switch k {
	case KindRoot, KindDynamicScope, KindCompilationUnit, KindPackage,
		KindModuleInstance, KindInterfaceInstance, KindInstance,
		KindIfGenerate, KindLoopGenerate, KindGenerateBlock,
		KindProceduralBlock, KindSequentialBlock, KindSubroutine, KindEnumType:
		return true
	default:
		return false
	}
}

func isDefinitionKind(k Kind) bool {
	return k == KindModule || k == KindInterface || k == KindProgram
}
