package session

// Decision результат проверки защиты маршрута.
type Decision int

const (
	// DecisionPending начальная загрузка не завершена: ничего не показывать
	// и не перенаправлять, иначе возможен ложный редирект до завершения
	// проверки сохранённого токена.
	DecisionPending Decision = iota
	// DecisionRedirect сессия не аутентифицирована: выполнен переход к входу.
	DecisionRedirect
	// DecisionAllow защищённое содержимое можно показывать.
	DecisionAllow
)

// Guard пропускает к защищённым представлениям только аутентифицированную
// сессию. Порядок проверки фиксирован: сначала loading, затем аутентификация.
type Guard struct {
	store    *Store
	redirect func()
}

// NewGuard создаёт защиту маршрутов. redirect — переход к представлению
// входа, вызывается при отказе в доступе.
func NewGuard(store *Store, redirect func()) *Guard {
	return &Guard{store: store, redirect: redirect}
}

// Check классифицирует текущее состояние сессии и при отказе выполняет
// переход к входу.
func (g *Guard) Check() Decision {
	st := g.store.State()
	if st.Loading {
		return DecisionPending
	}
	if !st.IsAuthenticated {
		if g.redirect != nil {
			g.redirect()
		}
		return DecisionRedirect
	}
	return DecisionAllow
}
