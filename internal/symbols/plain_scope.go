package symbols

// PlainScope is a minimal, concrete Scope implementation backed by the
// Table arena — a stand-in for the external name-resolution pass the real
// front end would supply, in the same spirit as the teacher's
// internal/symbols.Scope arena but reduced to what this binder's tests
// need to construct scope fixtures by hand.
type PlainScope struct {
	table    *Table
	parent   *PlainScope
	root     *PlainScope
	self     SymbolID // the symbol this scope belongs to (e.g. enclosing subroutine), may be NoSymbolID
	selfKind Kind
	members  []SymbolID
	byName   map[Name][]SymbolID
	packages map[Name]*PlainScope
}

// NewRootScope returns a fresh top-level scope with its own symbol table.
func NewRootScope() *PlainScope {
	s := &PlainScope{
		table:    NewTable(),
		byName:   make(map[Name][]SymbolID),
		packages: make(map[Name]*PlainScope),
	}
	s.root = s
	return s
}

// Table exposes the backing symbol table so fixtures can declare symbols.
func (s *PlainScope) Table() *Table { return s.table }

// Declare allocates a symbol in the root table and adds it to this scope's
// member list and name index.
func (s *PlainScope) Declare(name Name, sym Symbol) SymbolID {
	sym.Name = name
	id := s.root.table.Declare(sym)
	s.members = append(s.members, id)
	s.byName[name] = append(s.byName[name], id)
	return id
}

// NewChild returns a nested scope sharing this scope's root table.
func (s *PlainScope) NewChild(self SymbolID, selfKind Kind) *PlainScope {
	return &PlainScope{
		table:    s.table,
		parent:   s,
		root:     s.root,
		self:     self,
		selfKind: selfKind,
		byName:   make(map[Name][]SymbolID),
		packages: s.packages,
	}
}

// DeclarePackage registers child as a package scope reachable from the
// root via FindPackage.
func (s *PlainScope) DeclarePackage(name Name, child *PlainScope) {
	s.root.packages[name] = child
}

func (s *PlainScope) Lookup(name Name, _ LookupKind) LookupResult {
	for scope := s; scope != nil; scope = scope.parent {
		if ids, ok := scope.byName[name]; ok {
			switch len(ids) {
			case 0:
				continue
			case 1:
				return Found(ids[0])
			default:
				return Ambiguous
			}
		}
	}
	return NotFound
}

func (s *PlainScope) AsSymbol() SymbolID { return s.self }

func (s *PlainScope) Members() []SymbolID { return s.members }

func (s *PlainScope) FindAncestor(kind Kind) SymbolID {
	for scope := s; scope != nil; scope = scope.parent {
		if scope.self.IsValid() && scope.selfKind == kind {
			return scope.self
		}
	}
	return NoSymbolID
}

func (s *PlainScope) FindPackage(name Name) (Scope, bool) {
	child, ok := s.root.packages[name]
	if !ok {
		return nil, false
	}
	return child, true
}

func (s *PlainScope) Resolve(id SymbolID) *Symbol {
	return s.root.table.Get(id)
}
